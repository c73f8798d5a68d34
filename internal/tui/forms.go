package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formKind int

const (
	formNone formKind = iota
	formDeal
	formTask
	formCompany
	formAgency
	formSubtask
)

func (k formKind) title() string {
	switch k {
	case formDeal:
		return "New Deal"
	case formTask:
		return "New Task"
	case formCompany:
		return "New Company"
	case formAgency:
		return "New Agency"
	case formSubtask:
		return "New Subtask"
	default:
		return ""
	}
}

type formField struct {
	key      string
	label    string
	required bool
	input    textinput.Model
}

// entityForm is a vertical stack of text inputs. Exactly one field has focus.
type entityForm struct {
	kind   formKind
	fields []formField
	focus  int
	err    string
}

type fieldSpec struct {
	key, label, placeholder string
	required                bool
}

var formSpecs = map[formKind][]fieldSpec{
	formDeal: {
		{"dealName", "Deal name", "Acme website rebuild", true},
		{"company", "Company", "Acme Corp", true},
		{"contactName", "Contact", "", false},
		{"email", "Email", "", false},
		{"budget", "Budget", "25000", false},
		{"riskLevel", "Risk level", "Medium", false},
		{"services", "Services", "Branding, SEO", false},
		{"notes", "Notes", "", false},
	},
	formTask: {
		{"name", "Task name", "", true},
		{"projectId", "Project id", "proj-101", true},
		{"assignee", "Assignee", "", false},
		{"dueDate", "Due date", "2025-06-30", false},
		{"priority", "Priority", "Medium", false},
	},
	formCompany: {
		{"name", "Company name", "", true},
		{"industry", "Industry", "", false},
		{"contact", "Contact", "", false},
		{"email", "Email", "", false},
		{"city", "City", "", false},
	},
	formAgency: {
		{"name", "Agency name", "", true},
		{"contact", "Contact", "", false},
		{"email", "Email", "", false},
		{"city", "City", "", false},
		{"companyIds", "Company ids", "org-501, org-503", false},
	},
	formSubtask: {
		{"name", "Subtask name", "", true},
		{"assignee", "Assignee", "", false},
		{"dueDate", "Due date", "", false},
	},
}

func newEntityForm(kind formKind, prefill map[string]string) entityForm {
	f := entityForm{kind: kind}
	for _, spec := range formSpecs[kind] {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = spec.placeholder
		in.CharLimit = 200
		in.SetValue(prefill[spec.key])
		f.fields = append(f.fields, formField{key: spec.key, label: spec.label, required: spec.required, input: in})
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f entityForm) open() bool { return f.kind != formNone }

func (f entityForm) value(key string) string {
	for _, fld := range f.fields {
		if fld.key == key {
			return strings.TrimSpace(fld.input.Value())
		}
	}
	return ""
}

// list splits a comma separated field.
func (f entityForm) list(key string) []string {
	var out []string
	for _, s := range strings.Split(f.value(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (f entityForm) validate() error {
	var missing []string
	for _, fld := range f.fields {
		if fld.required && strings.TrimSpace(fld.input.Value()) == "" {
			missing = append(missing, fld.label)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (f *entityForm) move(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

type formAction int

const (
	formContinue formAction = iota
	formSubmit
	formCancel
)

// update handles one key. Enter on the last field (or ctrl+s anywhere) submits; esc cancels.
func (f *entityForm) update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancel, nil
	case "tab", "down":
		f.move(1)
		return formContinue, nil
	case "shift+tab", "up":
		f.move(-1)
		return formContinue, nil
	case "ctrl+s":
		return formSubmit, nil
	case "enter":
		if f.focus == len(f.fields)-1 {
			return formSubmit, nil
		}
		f.move(1)
		return formContinue, nil
	}
	if len(f.fields) == 0 {
		return formContinue, nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return formContinue, cmd
}

func (f entityForm) view(width int) string {
	inputW := width - 22
	if inputW < 16 {
		inputW = 16
	}
	box := lipgloss.NewStyle().Background(colorControlBg).Width(inputW)
	focused := box.Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorAccent)

	lines := []string{lipgloss.NewStyle().Bold(true).Render(f.kind.title()), ""}
	for i, fld := range f.fields {
		label := fld.label
		if fld.required {
			label += " *"
		}
		st := box
		if i == f.focus {
			st = focused
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, styleLabel().Render(label), st.Render(fld.input.View())))
	}
	if f.err != "" {
		lines = append(lines, "", styleError().Render(f.err))
	}
	return strings.Join(lines, "\n")
}
