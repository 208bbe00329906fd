package email

import "fmt"

// VerificationMessage builds the email sent after registration.
func VerificationMessage(to, firstName, baseURL, token string) Message {
	link := fmt.Sprintf("%s/verify-email?token=%s", baseURL, token)

	text := fmt.Sprintf(`Hello, %s!

Welcome to the digital literacy platform.

To finish registering, open this link:
%s

If you did not register, ignore this message.
`, firstName, link)

	html := fmt.Sprintf(`<p>Hello, %s!</p>
<p>Welcome to the digital literacy platform.</p>
<p>To finish registering, <a href="%s">verify your email</a> or open this link:</p>
<p>%s</p>
<p>If you did not register, ignore this message.</p>`, firstName, link, link)

	return Message{
		To:      to,
		Subject: "Verify your email",
		Text:    text,
		HTML:    html,
	}
}

// PasswordResetMessage builds the email sent on a password reset request.
func PasswordResetMessage(to, firstName, baseURL, token string) Message {
	link := fmt.Sprintf("%s/reset-password?token=%s", baseURL, token)

	text := fmt.Sprintf(`Hello, %s!

A password reset was requested for your account.

To choose a new password, open this link (valid for one hour):
%s

If you did not request a reset, ignore this message.
`, firstName, link)

	html := fmt.Sprintf(`<p>Hello, %s!</p>
<p>A password reset was requested for your account.</p>
<p>To choose a new password, <a href="%s">open this link</a> (valid for one hour):</p>
<p>%s</p>
<p>If you did not request a reset, ignore this message.</p>`, firstName, link, link)

	return Message{
		To:      to,
		Subject: "Reset your password",
		Text:    text,
		HTML:    html,
	}
}
