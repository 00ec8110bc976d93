// Package email holds the message bodies shared by the email sender backends.
package email

import (
	"fmt"
	"html"
)

// NotificationSubject returns the subject line for an urgent notification email.
func NotificationSubject(title string) string {
	return "[EstateHub] " + title
}

// NotificationText renders the plain-text body of a notification email.
func NotificationText(toName, title, message, frontendURL string) string {
	return fmt.Sprintf("Hi %s,\n\n%s\n\n%s\n\nView your notifications: %s/notifications\n\nEstateHub",
		toName, title, message, frontendURL)
}

// NotificationHTML renders the HTML body of a notification email.
func NotificationHTML(toName, title, message, frontendURL string) string {
	link := frontendURL + "/notifications"
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #B91C1C;">%s</h2>
  <p>Hi %s,</p>
  <p>%s</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #1F4E78; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Notifications</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">EstateHub - Operations Back Office</p>
</body>
</html>`, html.EscapeString(title), html.EscapeString(toName), html.EscapeString(message), link)
}
