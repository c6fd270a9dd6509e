package game

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/appengine-ltd/podo-rush/internal/id"
)

const (
	DateLayout    = "2006-01-02"
	GridDays      = 42
	eventIDPrefix = "evt"
)

type EventType string

const (
	EventConcert   EventType = "concert"
	EventTicketing EventType = "ticketing"
)

func (t EventType) Label() string {
	switch t {
	case EventConcert:
		return "Concert"
	case EventTicketing:
		return "Ticketing"
	default:
		return string(t)
	}
}

type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type CalendarEvent struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Type      EventType       `json:"type"`
	Name      string          `json:"name"`
	Location  string          `json:"location,omitempty"`
	Time      string          `json:"time,omitempty"`
	Venue     string          `json:"venue,omitempty"`
	Checklist []ChecklistItem `json:"checklist"`
}

// EventForm is what the user submits to add an event. Location applies to
// concerts, Venue (the ticket vendor) to ticketing events.
type EventForm struct {
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	Type     EventType `json:"type" validate:"required,oneof=concert ticketing"`
	Name     string    `json:"name" validate:"required"`
	Location string    `json:"location"`
	Time     string    `json:"time" validate:"omitempty,datetime=15:04"`
	Venue    string    `json:"venue"`
}

func DefaultChecklist(t EventType) []ChecklistItem {
	var labels []string
	if t == EventConcert {
		labels = []string{"Ticket", "Light stick", "Batteries", "ID card", "Power bank", "Water"}
	} else {
		labels = []string{"Disable popup blocker", "Check payment method", "Register delivery address", "Turn on mobile data", "Decide on a seating area"}
	}
	items := make([]ChecklistItem, len(labels))
	for i, l := range labels {
		items[i] = ChecklistItem{Label: l}
	}
	return items
}

type Day struct {
	Date    time.Time
	InMonth bool
}

func (d Day) YMD() string {
	return d.Date.Format(DateLayout)
}

// MonthGrid returns six Monday-first weeks covering the month.
func MonthGrid(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)

	days := make([]Day, GridDays)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = Day{Date: d, InMonth: d.Month() == month}
	}
	return days
}

// Planner holds the calendar screen's session state. Events live in memory
// only.
type Planner struct {
	month    time.Time
	selected string
	events   []CalendarEvent
	validate *validator.Validate
	newID    func() (string, error)
}

func NewPlanner(today time.Time) *Planner {
	return &Planner{
		month:    time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		validate: validator.New(),
		newID: func() (string, error) {
			return id.Generate(eventIDPrefix)
		},
	}
}

func (p *Planner) Month() (int, time.Month) {
	return p.month.Year(), p.month.Month()
}

func (p *Planner) Grid() []Day {
	return MonthGrid(p.month.Year(), p.month.Month())
}

func (p *Planner) NextMonth() {
	p.month = p.month.AddDate(0, 1, 0)
}

func (p *Planner) PrevMonth() {
	p.month = p.month.AddDate(0, -1, 0)
}

func (p *Planner) Select(date string) {
	p.selected = date
}

func (p *Planner) Selected() string {
	return p.selected
}

// AddEvent validates the form, attaches the checklist template for its type
// and puts the new event first. An empty form date falls back to the
// selected date.
func (p *Planner) AddEvent(form EventForm) (CalendarEvent, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Location = strings.TrimSpace(form.Location)
	form.Venue = strings.TrimSpace(form.Venue)
	form.Time = strings.TrimSpace(form.Time)
	if form.Date == "" {
		form.Date = p.selected
	}
	if form.Type == "" {
		form.Type = EventConcert
	}
	if err := p.validateForm(form); err != nil {
		return CalendarEvent{}, err
	}

	eventID, err := p.newID()
	if err != nil {
		return CalendarEvent{}, err
	}
	ev := CalendarEvent{
		ID:        eventID,
		Date:      form.Date,
		Type:      form.Type,
		Name:      form.Name,
		Time:      form.Time,
		Checklist: DefaultChecklist(form.Type),
	}
	if form.Type == EventConcert {
		ev.Location = form.Location
	} else {
		ev.Venue = form.Venue
	}
	p.events = append([]CalendarEvent{ev}, p.events...)
	return ev, nil
}

func (p *Planner) validateForm(form EventForm) error {
	err := p.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	// Report in form order: date, type, name, time.
	order := map[string]int{"Date": 0, "Type": 1, "Name": 2, "Time": 3}
	first := fieldErrs[0]
	for _, fe := range fieldErrs[1:] {
		if order[fe.StructField()] < order[first.StructField()] {
			first = fe
		}
	}
	switch first.StructField() {
	case "Date":
		return ErrDateRequired
	case "Type":
		return ErrEventTypeInvalid
	case "Name":
		return ErrEventNameRequired
	case "Time":
		return ErrEventTimeInvalid
	default:
		return &ValidationError{Field: first.Field(), Message: "Please check the form."}
	}
}

func (p *Planner) ToggleChecklist(eventID string, idx int) error {
	i := slices.IndexFunc(p.events, func(e CalendarEvent) bool { return e.ID == eventID })
	if i < 0 {
		return ErrEventNotFound
	}
	ev := &p.events[i]
	if len(ev.Checklist) == 0 {
		ev.Checklist = DefaultChecklist(ev.Type)
	}
	if idx < 0 || idx >= len(ev.Checklist) {
		return ErrChecklistIndex
	}
	list := slices.Clone(ev.Checklist)
	list[idx].Done = !list[idx].Done
	ev.Checklist = list
	return nil
}

func (p *Planner) Events() []CalendarEvent {
	out := make([]CalendarEvent, len(p.events))
	for i, ev := range p.events {
		ev.Checklist = slices.Clone(ev.Checklist)
		out[i] = ev
	}
	return out
}

func (p *Planner) Event(eventID string) (CalendarEvent, bool) {
	for _, ev := range p.events {
		if ev.ID == eventID {
			ev.Checklist = slices.Clone(ev.Checklist)
			return ev, true
		}
	}
	return CalendarEvent{}, false
}

func (p *Planner) EventsOn(date string) []CalendarEvent {
	var out []CalendarEvent
	for _, ev := range p.events {
		if ev.Date == date {
			ev.Checklist = slices.Clone(ev.Checklist)
			out = append(out, ev)
		}
	}
	return out
}

func (p *Planner) HasEvent(date string) bool {
	return slices.ContainsFunc(p.events, func(e CalendarEvent) bool { return e.Date == date })
}
