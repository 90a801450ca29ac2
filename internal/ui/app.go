package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/format"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/bornholm/cocomo/internal/stats"
	"github.com/bornholm/cocomo/internal/store"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

var (
	// ErrUnsavedChanges is returned when quitting with pending modifications
	ErrUnsavedChanges = errors.New("unsaved changes, use :q! to force quit")
	// ErrUnknownCommand is returned for an ex command the editor does not know
	ErrUnknownCommand = errors.New("unknown command")
)

// App represents the main tview application
type App struct {
	app      *tview.Application
	store    store.Store
	config   *model.Config
	project  *model.Project
	filePath string

	// UI Components
	pages       *tview.Pages
	layout      *tview.Flex
	header      *tview.TextView
	ratingTable *RatingTable
	preview     *tview.TextView
	footer      *tview.TextView
	commandBar  *tview.InputField

	// State
	hasUnsavedChanges bool
	commandMode       bool
	modalVisible      bool
}

// NewApp creates a new App instance
func NewApp(s store.Store, config *model.Config, project *model.Project, filePath string) *App {
	a := &App{
		app:      tview.NewApplication(),
		store:    s,
		config:   config,
		project:  project,
		filePath: filePath,
	}

	a.setupUI()

	return a
}

func (a *App) setupUI() {
	a.header = tview.NewTextView()
	a.header.SetDynamicColors(true)
	a.header.SetTextAlign(tview.AlignCenter)
	a.updateHeader()

	a.ratingTable = NewRatingTable(a.project)
	a.ratingTable.OnRatingChanged = a.onRatingChanged

	a.preview = tview.NewTextView()
	a.preview.SetDynamicColors(true)
	a.preview.SetBorder(true)
	a.preview.SetTitle(" Estimate ")
	a.updatePreview()

	// Command bar (hidden by default)
	a.commandBar = tview.NewInputField()
	a.commandBar.SetLabel(":")
	a.commandBar.SetFieldWidth(40)
	a.commandBar.SetDoneFunc(a.handleCommand)

	a.footer = tview.NewTextView()
	a.footer.SetDynamicColors(true)
	a.footer.SetText("[yellow]h/l[white] Rating  [yellow]n[white] Nominal  [yellow]e[white] Edit Project  [yellow]:w[white] Save  [yellow]:q[white] Quit  [yellow]?[white] Help")

	mainContent := tview.NewFlex().SetDirection(tview.FlexColumn)
	mainContent.AddItem(a.ratingTable, 0, 3, true)
	mainContent.AddItem(a.preview, 0, 1, false)

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	a.layout.AddItem(a.header, 3, 0, false)
	a.layout.AddItem(mainContent, 0, 1, true)
	a.layout.AddItem(a.footer, 1, 0, false)

	a.pages = tview.NewPages()
	a.pages.AddPage("main", a.layout, true, true)
}

// Run starts the application
func (a *App) Run() error {
	a.pages.SetInputCapture(a.handleInput)

	// :q and :q! are the only ways out
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			return nil
		}
		return event
	})

	a.app.SetRoot(a.pages, true)
	a.app.SetFocus(a.ratingTable)
	return a.app.Run()
}

func (a *App) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if a.modalVisible || a.commandMode {
		return event
	}

	if event.Key() == tcell.KeyRune {
		switch event.Rune() {
		case ':':
			a.startCommandMode()
			return nil
		case '?':
			a.showHelp()
			return nil
		case 'e', 'i':
			a.editProject()
			return nil
		}
	}

	return event
}

func (a *App) startCommandMode() {
	a.commandMode = true
	a.commandBar.SetText("")

	a.layout.RemoveItem(a.footer)
	a.layout.AddItem(a.commandBar, 1, 0, true)
	a.app.SetFocus(a.commandBar)
}

func (a *App) exitCommandMode() {
	a.commandMode = false
	a.commandBar.SetText("")

	a.layout.RemoveItem(a.commandBar)
	a.layout.AddItem(a.footer, 1, 0, false)
	a.app.SetFocus(a.ratingTable)
}

func (a *App) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		a.exitCommandMode()
		return
	}

	quit, err := a.execute(strings.TrimSpace(a.commandBar.GetText()))
	if err != nil {
		a.commandBar.SetText(fmt.Sprintf("Error: %v", err))
		return
	}
	if quit {
		a.app.Stop()
		return
	}
	a.exitCommandMode()
}

// execute runs an ex-style command and reports whether the editor should exit
func (a *App) execute(command string) (bool, error) {
	switch command {
	case "w":
		return false, a.save()
	case "q":
		if a.hasUnsavedChanges {
			return false, ErrUnsavedChanges
		}
		return true, nil
	case "q!":
		return true, nil
	case "wq", "x":
		if err := a.save(); err != nil {
			return false, err
		}
		return true, nil
	case "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) save() error {
	if err := a.store.SaveProject(a.filePath, a.project); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	zap.S().Debugf("project saved to %s", a.filePath)

	a.hasUnsavedChanges = false
	a.updateHeader()
	return nil
}

func (a *App) markChanged() {
	a.hasUnsavedChanges = true
	a.updateHeader()
	a.updatePreview()
}

func (a *App) onRatingChanged(attr cocomo.Attribute, rating cocomo.Rating) {
	a.markChanged()
}

func (a *App) updateHeader() {
	title := a.project.Label
	if title == "" {
		title = "Untitled Project"
	}

	saved := ""
	if a.hasUnsavedChanges {
		saved = " [red](unsaved changes)[white]"
	}

	a.header.SetTitle(fmt.Sprintf(" COCOMO - %s%s ", title, saved))
	a.header.SetBorder(true)
}

// previewText renders the live estimate of the project
func (a *App) previewText() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[yellow]Size:[white] %d SLOC\n", a.project.SLOC)
	fmt.Fprintf(&sb, "[yellow]Class:[white] %s\n", a.project.Class)

	estimator, result, err := a.project.Estimate(a.config.EstimatorOptions()...)
	if estimator != nil {
		fmt.Fprintf(&sb, "[yellow]EAF:[white] %.4f\n", estimator.EAF())
	}
	if err != nil {
		fmt.Fprintf(&sb, "\n[red]%v[white]\n", err)
		return sb.String()
	}

	sb.WriteString("\n[yellow]Estimate:[white]\n")
	fmt.Fprintf(&sb, "  Effort: %.2f person-months\n", result.Effort)
	fmt.Fprintf(&sb, "  Time:   %.2f months\n", result.DevelopmentTime)
	fmt.Fprintf(&sb, "  People: %.2f\n", result.PeopleRequired)

	cost := stats.CalculateCost(result, a.config)
	sb.WriteString("\n[yellow]Cost:[white]\n")
	fmt.Fprintf(&sb, "  %s %s\n", format.FormatFloat(cost.TotalCost, 2), cost.Currency)
	fmt.Fprintf(&sb, "  %s hours", format.FormatFloat(cost.Hours, 0))

	return sb.String()
}

func (a *App) updatePreview() {
	a.preview.SetText(a.previewText())
}

func (a *App) showModal(item tview.Primitive, width, height int) {
	flex := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(item, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)

	a.modalVisible = true
	a.pages.AddPage("modal", flex, true, true)
	a.app.SetFocus(item)
}

func (a *App) closeModal() {
	a.modalVisible = false
	a.pages.RemovePage("modal")
	a.app.SetFocus(a.ratingTable)
}

// editProject opens a form to edit the label, size and class
func (a *App) editProject() {
	form := tview.NewForm()
	form.SetBorder(true)
	form.SetTitle(" Edit Project ")
	form.SetTitleAlign(tview.AlignCenter)

	label := a.project.Label
	description := a.project.Description
	class := a.project.Class

	var classOptions []string
	selectedClass := 0
	for i, c := range cocomo.Classes() {
		classOptions = append(classOptions, string(c))
		if c == class {
			selectedClass = i
		}
	}

	form.AddInputField("Label:", label, 40, nil, func(text string) {
		label = text
	})
	form.AddTextArea("Description:", description, 60, 3, 0, func(text string) {
		description = text
	})

	slocField := tview.NewInputField().
		SetLabel("SLOC:").
		SetText(fmt.Sprintf("%d", a.project.SLOC)).
		SetFieldWidth(12).
		SetAcceptanceFunc(tview.InputFieldInteger)
	form.AddFormItem(slocField)

	form.AddDropDown("Class:", classOptions, selectedClass, func(option string, index int) {
		class = cocomo.ProjectClass(option)
	})

	apply := func() {
		if err := a.updateProject(label, description, slocField.GetText(), class); err != nil {
			slocField.SetLabel("SLOC (invalid):")
			return
		}
		a.closeModal()
	}

	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			a.closeModal()
			return nil
		}
		return event
	})

	form.AddButton("Save (Enter)", apply)
	form.AddButton("Cancel (Esc)", a.closeModal)
	form.SetCancelFunc(a.closeModal)

	a.showModal(form, 80, 18)
}

// updateProject applies the project form. The project is left untouched on error.
func (a *App) updateProject(label, description, slocText string, class cocomo.ProjectClass) error {
	sloc, err := cocomo.ParseSLOC(slocText)
	if err != nil {
		return err
	}
	if sloc < 0 {
		return fmt.Errorf("%w: SLOC must not be negative", cocomo.ErrInvalidArgument)
	}

	a.project.Label = label
	a.project.Description = description
	a.project.SetSLOC(sloc)
	a.project.SetClass(class)

	a.markChanged()
	return nil
}

func (a *App) showHelp() {
	helpView := tview.NewTextView()
	helpView.SetDynamicColors(true)
	helpView.SetBorder(true)
	helpView.SetTitle(" Keyboard Shortcuts ")
	helpView.SetTitleAlign(tview.AlignCenter)

	helpView.SetText(`[yellow]Commands:[white]
  :w         Save project
  :q         Quit application
  :q!        Force quit (discard changes)
  :wq or :x  Save and quit

[yellow]Ratings:[white]
  h/l        Lower/raise rating
  n          Reset to nominal
  j/k        Select attribute

[yellow]Project:[white]
  e or i     Edit label, size and class

[gray]Press Escape or Enter to close[white]`)

	helpView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyEnter {
			a.closeModal()
			return nil
		}
		return event
	})

	a.showModal(helpView, 50, 18)
}
