package mailsmodels

import (
	"fmt"
	"html"
	"strings"

	"amusicbible-backend/models"
	"amusicbible-backend/utils"
)

func OrderConfirmation(mailer utils.Mailer, order models.Order, currency string) error {
	var items strings.Builder
	for _, item := range order.Items {
		items.WriteString("<li>" + html.EscapeString(item.Title) + "</li>")
	}

	subject := "Subject: Your aMusicBible purchase\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1F3A5F; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px; border-radius: 10px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Thank you for your purchase</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Hello %s,</p>
						<ul style="list-style: none; padding: 0;">%s</ul>
						<p><strong>Total: %s %s</strong></p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, html.EscapeString(order.FirstName), items.String(), order.Total.StringFixed(2), strings.ToUpper(currency))

	return mailer.Send(order.Email, []byte(subject+htmlMime+body))
}
