package ui

import (
	"fmt"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/model"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// First column holding a rating, after the attribute name and description
const ratingColumnOffset = 2

// RatingTable shows every attribute with its multiplier at each rating,
// the current rating of the project being highlighted
type RatingTable struct {
	*tview.Table

	project *model.Project

	// Callbacks
	OnRatingChanged func(attr cocomo.Attribute, rating cocomo.Rating)

	attributes []cocomo.Attribute
	ratings    []cocomo.Rating
}

// NewRatingTable creates a new RatingTable bound to the project
func NewRatingTable(project *model.Project) *RatingTable {
	t := &RatingTable{
		Table:      tview.NewTable(),
		project:    project,
		attributes: cocomo.Attributes(),
		ratings:    cocomo.Ratings(),
	}

	t.SetBorder(true)
	t.SetTitle(" Attributes ")
	t.SetSelectable(true, false)
	t.SetFixed(1, 0)

	t.setupColumns()
	t.populate()
	t.setupKeyBindings()

	t.Select(1, 0)

	return t
}

func (t *RatingTable) setupColumns() {
	t.SetCell(0, 0, tview.NewTableCell("Attr").
		SetTextColor(tcell.ColorYellow).
		SetSelectable(false))
	t.SetCell(0, 1, tview.NewTableCell("Description").
		SetTextColor(tcell.ColorYellow).
		SetSelectable(false).
		SetExpansion(1))

	for i, r := range t.ratings {
		t.SetCell(0, ratingColumnOffset+i, tview.NewTableCell(r.Abbreviation()).
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignRight).
			SetSelectable(false))
	}
}

func (t *RatingTable) populate() {
	for i, attr := range t.attributes {
		t.setAttributeRow(i+1, attr)
	}
}

func (t *RatingTable) setAttributeRow(row int, attr cocomo.Attribute) {
	current := t.project.Rating(attr)

	t.SetCell(row, 0, tview.NewTableCell(string(attr)).
		SetTextColor(tcell.ColorWhite).
		SetReference(attr))
	t.SetCell(row, 1, tview.NewTableCell(attr.Label()).
		SetTextColor(tcell.ColorWhite).
		SetReference(attr))

	for i, r := range t.ratings {
		factor, _ := cocomo.Multiplier(attr, r)

		cell := tview.NewTableCell(fmt.Sprintf("%.2f", factor)).
			SetAlign(tview.AlignRight).
			SetTextColor(tcell.ColorGray).
			SetReference(attr)

		if r == current {
			cell.SetTextColor(tcell.ColorBlack).
				SetBackgroundColor(tcell.ColorGreen)
		}

		t.SetCell(row, ratingColumnOffset+i, cell)
	}
}

func (t *RatingTable) setupKeyBindings() {
	t.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft:
			t.ShiftSelected(-1)
			return nil
		case tcell.KeyRight:
			t.ShiftSelected(1)
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'j':
				row, col := t.GetSelection()
				if row < t.GetRowCount()-1 {
					t.Select(row+1, col)
				}
				return nil
			case 'k':
				row, col := t.GetSelection()
				if row > 1 {
					t.Select(row-1, col)
				}
				return nil
			case 'h':
				t.ShiftSelected(-1)
				return nil
			case 'l':
				t.ShiftSelected(1)
				return nil
			case 'n':
				t.ResetSelected()
				return nil
			}
		}

		return event
	})
}

// SelectedAttribute returns the attribute of the selected row
func (t *RatingTable) SelectedAttribute() (cocomo.Attribute, bool) {
	row, _ := t.GetSelection()
	if row < 1 || row > len(t.attributes) {
		return "", false
	}
	return t.attributes[row-1], true
}

// ShiftSelected moves the rating of the selected attribute by delta steps,
// staying within very-low and extra-high
func (t *RatingTable) ShiftSelected(delta int) {
	attr, ok := t.SelectedAttribute()
	if !ok {
		return
	}

	current := t.project.Rating(attr)
	idx := 0
	for i, r := range t.ratings {
		if r == current {
			idx = i
			break
		}
	}

	next := idx + delta
	if next < 0 || next >= len(t.ratings) {
		return
	}

	t.setRating(attr, t.ratings[next])
}

// ResetSelected sets the selected attribute back to nominal
func (t *RatingTable) ResetSelected() {
	attr, ok := t.SelectedAttribute()
	if !ok {
		return
	}
	if _, rated := t.project.Ratings[string(attr)]; !rated {
		return
	}

	t.project.ClearRating(string(attr))
	t.Refresh()

	if t.OnRatingChanged != nil {
		t.OnRatingChanged(attr, cocomo.RatingNominal)
	}
}

func (t *RatingTable) setRating(attr cocomo.Attribute, rating cocomo.Rating) {
	if err := t.project.SetRating(string(attr), string(rating)); err != nil {
		return
	}
	t.Refresh()

	if t.OnRatingChanged != nil {
		t.OnRatingChanged(attr, rating)
	}
}

// Refresh redraws every attribute row from the project
func (t *RatingTable) Refresh() {
	t.populate()
}
