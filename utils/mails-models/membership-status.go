package mailsmodels

import (
	"fmt"
	"html"

	"amusicbible-backend/utils"
)

type MembershipStatusData struct {
	Name               string
	Email              string
	SubscriptionPeriod string
}

func MembershipAccepted(mailer utils.Mailer, data MembershipStatusData) error {
	subject := "Subject: Welcome to aMusicBible membership\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1F3A5F; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px; border-radius: 10px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Your membership is active</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Hello %s,</p>
						<p>Your application for a %s membership has been accepted.</p>
						<p>You now have access to the member library on aMusicBible.</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, html.EscapeString(data.Name), html.EscapeString(data.SubscriptionPeriod))

	return mailer.Send(data.Email, []byte(subject+htmlMime+body))
}

func MembershipRejected(mailer utils.Mailer, data MembershipStatusData) error {
	subject := "Subject: Your aMusicBible membership application\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1F3A5F; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px; border-radius: 10px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Membership application</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Hello %s,</p>
						<p>We are sorry, your application for a %s membership could not be accepted.</p>
						<p>You are welcome to apply again at any time.</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, html.EscapeString(data.Name), html.EscapeString(data.SubscriptionPeriod))

	return mailer.Send(data.Email, []byte(subject+htmlMime+body))
}
