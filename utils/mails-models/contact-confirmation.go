package mailsmodels

import (
	"fmt"
	"html"

	"amusicbible-backend/utils"
)

const htmlMime = "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func ContactConfirmation(mailer utils.Mailer, contact ContactEmailData) error {
	subject := "Subject: We received your message - aMusicBible\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1F3A5F; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Thank you for your message!</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Hello %s,</p>
						<p>We received your request about: "%s"</p>
						<p>Our team will get back to you shortly.</p>
						<p>Your message:</p>
						<blockquote style="background-color: #f5f5f5; padding: 15px; border-left: 5px solid #1F3A5F;">
							%s
						</blockquote>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, html.EscapeString(contact.Name), html.EscapeString(contact.Subject), html.EscapeString(contact.Message))

	return mailer.Send(contact.Email, []byte(subject+htmlMime+body))
}
