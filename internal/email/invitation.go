package email

import "fmt"

// InvitationSubject and InvitationBody render the staff invitation message.
// Delivery itself is best-effort; the invitation row is the source of truth.
func InvitationSubject(orgName string) string {
	return fmt.Sprintf("You've been invited to join %s", orgName)
}

func InvitationBody(orgName, role, baseURL, token string) string {
	return fmt.Sprintf(
		"You've been invited to join %s as %s.\n\n"+
			"Accept the invitation here:\n%s/invitations/accept?token=%s\n\n"+
			"If you weren't expecting this email you can ignore it.",
		orgName, role, baseURL, token,
	)
}
