package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/heartmarshall/renewal-manager/internal/domain"
)

// ExpiryDateLayout renders dates like "Monday, January 2, 2006".
const ExpiryDateLayout = "Monday, January 2, 2006"

//go:embed templates/reminder.html
var templatesFS embed.FS

var reminderTmpl = template.Must(template.ParseFS(templatesFS, "templates/reminder.html"))

type reminderView struct {
	ClientName string
	ItemName   string
	ItemType   string
	ExpiryDate string
	Urgency    string
	Status     string
	Notes      string
}

// Render produces the HTML body of a renewal reminder. All values are
// HTML-escaped by the template engine.
func (n *Notifier) Render(msg domain.ReminderMessage) (string, error) {
	view := reminderView{
		ClientName: msg.ClientName,
		ItemName:   msg.ItemName,
		ItemType:   msg.ItemType,
		ExpiryDate: msg.ExpiryDate.In(n.loc).Format(ExpiryDateLayout),
		Urgency:    domain.ClassifyUrgency(msg.DaysLeft).String(),
		Status:     statusLine(msg.DaysLeft),
	}
	if msg.Notes != nil {
		view.Notes = *msg.Notes
	}

	var buf bytes.Buffer
	if err := reminderTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render reminder: %w", err)
	}
	return buf.String(), nil
}

func statusLine(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return "EXPIRED"
	case daysLeft == 1:
		return "1 day remaining"
	default:
		return strconv.Itoa(daysLeft) + " days remaining"
	}
}
