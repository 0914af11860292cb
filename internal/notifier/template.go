package notifier

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"glassysee/internal/model"

	"github.com/google/uuid"
)

// Subject lines for the storefront's transactional emails.
const (
	customerSubjectFormat = "Order Confirmation - Aurée Luxury Eyewear (Order #%s)"
	adminSubjectFormat    = "New Order Received - Aurée Luxury Eyewear (Order #%s)"
	testSubject           = "GlassySee Email Test"
)

// OrderEmailData is the data rendered into the order confirmation email.
type OrderEmailData struct {
	OrderID         uuid.UUID
	CustomerName    string
	CustomerEmail   string
	Items           []model.CheckoutItem
	Total           float64
	ShippingAddress model.CustomerInfo
}

var orderConfirmationTmpl = template.Must(template.New("order-confirmation").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"lineTotal": func(item model.CheckoutItem) string {
		return fmt.Sprintf("$%.2f", item.Price*float64(item.Quantity))
	},
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f8f8f8;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff;">
    <div style="text-align: center; padding: 20px 0;">
      <h1 style="font-size: 32px; font-weight: 300; letter-spacing: 0.15em; color: #000000;">AURÉE</h1>
      <p style="font-size: 14px; color: #666666;">Luxury Eyewear</p>
    </div>
    <hr style="border: 1px solid #e0e0e0; margin: 20px 0;" />
    <div style="padding: 20px 0;">
      <h2 style="font-size: 24px; font-weight: 300; color: #000000;">Order Confirmation</h2>
      <p style="font-size: 16px; color: #333333;">Thank you for your order, {{.CustomerName}}!</p>
      <p style="font-size: 16px; color: #333333;">Order ID: <strong>{{.OrderID}}</strong></p>
    </div>
    <hr style="border: 1px solid #e0e0e0; margin: 20px 0;" />
    <div style="padding: 20px 0;">
      <h3 style="font-size: 18px; font-weight: 300; color: #000000;">Order Details</h3>
      <table style="width: 100%;">
        {{range .Items}}
        <tr>
          <td style="width: 70%;">
            <p style="font-size: 16px; color: #333333; margin: 0;">{{.Name}}</p>
            <p style="font-size: 14px; color: #666666; margin: 0;">Quantity: {{.Quantity}}</p>
          </td>
          <td style="width: 30%; text-align: right;">
            <p style="font-size: 16px; color: #000000; font-weight: 500;">{{lineTotal .}}</p>
          </td>
        </tr>
        {{end}}
      </table>
      <hr style="border: 1px solid #e0e0e0; margin: 20px 0;" />
      <table style="width: 100%;">
        <tr>
          <td style="width: 70%; font-size: 18px; color: #333333;">Total</td>
          <td style="width: 30%; text-align: right; font-size: 20px; color: #000000; font-weight: 600;">{{money .Total}}</td>
        </tr>
      </table>
    </div>
    <hr style="border: 1px solid #e0e0e0; margin: 20px 0;" />
    <div style="padding: 20px 0;">
      <h3 style="font-size: 18px; font-weight: 300; color: #000000;">Shipping Address</h3>
      <p style="font-size: 16px; color: #333333; margin: 0;">{{.ShippingAddress.FirstName}} {{.ShippingAddress.LastName}}</p>
      <p style="font-size: 16px; color: #333333; margin: 0;">{{.ShippingAddress.Address}}</p>
      <p style="font-size: 16px; color: #333333; margin: 0;">{{.ShippingAddress.City}}, {{.ShippingAddress.PostalCode}}</p>
      <p style="font-size: 16px; color: #333333; margin: 0;">{{.ShippingAddress.Country}}</p>
    </div>
    <hr style="border: 1px solid #e0e0e0; margin: 20px 0;" />
    <p style="font-size: 12px; color: #999999; text-align: center;">Questions about your order? Reply to this email and we'll help.</p>
  </div>
</body>
</html>`))

// RenderOrderConfirmation renders the order confirmation HTML body.
func RenderOrderConfirmation(data OrderEmailData) (string, error) {
	var b strings.Builder
	if err := orderConfirmationTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render order confirmation: %w", err)
	}
	return b.String(), nil
}

// CustomerSubject returns the subject line for the customer confirmation.
func CustomerSubject(orderID uuid.UUID) string {
	return fmt.Sprintf(customerSubjectFormat, orderID)
}

// AdminSubject returns the subject line for the admin notification.
func AdminSubject(orderID uuid.UUID) string {
	return fmt.Sprintf(adminSubjectFormat, orderID)
}

// TestMessage builds the admin test-ping email.
func TestMessage(to string, now time.Time) Message {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #000; font-weight: 300;">GlassySee Email Test</h1>
		  <p>This is a test email to verify that the email service is working correctly.</p>
		  <p>Time: %s</p>
		  <p>If you receive this email, the email configuration is working!</p>
		</div>
	`, now.Format(time.RFC1123))

	return Message{
		To:      []string{to},
		Subject: testSubject,
		HTML:    html,
	}
}
