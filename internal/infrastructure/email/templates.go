package email

import (
	"bytes"
	"html/template"
)

// Guest-facing templates keep the serif letter style of the country sites;
// the admin approval template uses a plain system font.

var ackTmpl = template.Must(template.New("acknowledgment").Parse(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <h1 style="font-size: 24px; font-weight: normal; margin-bottom: 30px;">Dear {{.FirstName}},</h1>
  <p style="line-height: 1.8; color: #333;">Thank you for your interest in exploring with us. We've received your journey request and are reviewing it now.</p>
  <div style="background: #f9f7f4; padding: 24px; margin: 30px 0;">
    <p style="margin: 0 0 10px 0;"><strong>Journey Interest:</strong> {{.Journey}}</p>
    <p style="margin: 0 0 10px 0;"><strong>Travel Dates:</strong> {{.Month}} {{.Year}}</p>
    <p style="margin: 0 0 10px 0;"><strong>Travelers:</strong> {{.Travelers}}</p>
    <p style="margin: 0;"><strong>Duration:</strong> {{.Days}} days</p>
  </div>
  <p style="line-height: 1.8; color: #333;">We'll be in touch within 24 hours with next steps.</p>
  <p style="line-height: 1.8; color: #333; margin-top: 40px;">Warm regards,<br>The {{.SiteName}} Team</p>
</div>`))

var missingInfoTmpl = template.Must(template.New("missing_info").Parse(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <h1 style="font-size: 24px; font-weight: normal; margin-bottom: 30px;">Dear {{.FirstName}},</h1>
  <p style="line-height: 1.8; color: #333;">Thank you for your journey request. To prepare a personalized itinerary for you, we need a bit more information:</p>
  <ul style="background: #f9f7f4; padding: 24px 24px 24px 40px; margin: 30px 0;">
    {{range .MissingFields}}<li style="margin-bottom: 8px;">{{.}}</li>{{end}}
  </ul>
  <p style="line-height: 1.8; color: #333;">Simply reply to this email with these details, and we'll get started on your itinerary.</p>
  <p style="line-height: 1.8; color: #333; margin-top: 40px;">Warm regards,<br>The {{.SiteName}} Team</p>
</div>`))

var approvalRequestTmpl = template.Must(template.New("approval_request").Parse(`
<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <h1 style="font-size: 20px; margin-bottom: 24px;">Proposal Ready for Approval</h1>
  <div style="background: #f5f5f5; padding: 20px; margin-bottom: 24px;">
    <p style="margin: 0 0 8px 0;"><strong>Client:</strong> {{.ClientName}}</p>
    <p style="margin: 0 0 8px 0;"><strong>ID:</strong> {{.ClientID}}</p>
    <p style="margin: 0 0 8px 0;"><strong>Country:</strong> {{.SiteName}}</p>
  </div>
  <div style="margin-bottom: 24px;">
    <h3 style="font-size: 14px; margin-bottom: 12px;">Proposal Summary:</h3>
    <p style="line-height: 1.6; color: #333;">{{.ProposalSummary}}</p>
  </div>
  <div style="display: flex; gap: 16px;">
    <a href="{{.ApproveURL}}" style="background: #22c55e; color: #fff; padding: 14px 28px; text-decoration: none; display: inline-block; font-size: 14px; font-weight: 500;">APPROVE</a>
    <a href="{{.RejectURL}}" style="background: #ef4444; color: #fff; padding: 14px 28px; text-decoration: none; display: inline-block; font-size: 14px; font-weight: 500;">REJECT</a>
  </div>
  <p style="margin-top: 24px; font-size: 13px; color: #666;">Click Approve to send the proposal with payment link to the client.</p>
</div>`))

var paymentRequestTmpl = template.Must(template.New("payment_request").Parse(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <h1 style="font-size: 24px; font-weight: normal; margin-bottom: 30px;">Dear {{.FirstName}},</h1>
  <p style="line-height: 1.8; color: #333;">Great news &mdash; your itinerary has been finalized and is ready to book.</p>
  <div style="background: #f9f7f4; padding: 24px; margin: 30px 0; text-align: center;">
    <p style="margin: 0 0 8px 0; font-size: 14px; color: #666;">Total Amount</p>
    <p style="margin: 0; font-size: 28px; font-weight: bold;">{{.Currency}} {{.TotalAmount}}</p>
  </div>
  <div style="text-align: center; margin: 40px 0;">
    <a href="{{.ProposalURL}}" style="color: #1a1a1a; text-decoration: underline; display: block; margin-bottom: 16px;">View Your Itinerary</a>
    <a href="{{.PaymentURL}}" style="background: #1a1a1a; color: #fff; padding: 16px 32px; text-decoration: none; display: inline-block; font-size: 14px; letter-spacing: 0.1em;">SECURE YOUR JOURNEY</a>
  </div>
  <p style="line-height: 1.8; color: #333;">Once payment is received, we'll send you a confirmation with next steps.</p>
  <p style="line-height: 1.8; color: #333; margin-top: 40px;">Warm regards,<br>The {{.SiteName}} Team</p>
</div>`))

var paymentConfirmationTmpl = template.Must(template.New("payment_confirmation").Parse(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <h1 style="font-size: 24px; font-weight: normal; margin-bottom: 30px;">Dear {{.FirstName}},</h1>
  <p style="line-height: 1.8; color: #333;">Thank you! We've received your payment of {{.Currency}} {{.Amount}}.</p>
  <div style="background: #f0fdf4; border: 1px solid #22c55e; padding: 24px; margin: 30px 0; text-align: center;">
    <p style="margin: 0; color: #166534; font-size: 18px;">&#10003; Your journey is confirmed</p>
  </div>
  <p style="line-height: 1.8; color: #333;">We'll be in touch shortly with detailed information about your upcoming adventure.</p>
  <p style="line-height: 1.8; color: #333; margin-top: 40px;">Warm regards,<br>The {{.SiteName}} Team</p>
</div>`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
