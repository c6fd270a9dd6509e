package ranking

const DefaultPageSize = 10

// Page is a 1-based slice of a ranking list.
type Page struct {
	Items      []Entry
	Number     int
	TotalPages int
	Offset     int
	Total      int
}

// Paginate clamps page into [1, TotalPages]. An empty list still has one
// page.
func Paginate(entries []Entry, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(entries)
	pages := max(1, (total+size-1)/size)
	page = min(max(page, 1), pages)

	start := (page - 1) * size
	end := min(start+size, total)
	return Page{
		Items:      entries[start:end],
		Number:     page,
		TotalPages: pages,
		Offset:     start,
		Total:      total,
	}
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Row is a ranked, display-ready entry.
type Row struct {
	Rank        int
	Entry       Entry
	Highlighted bool
}

type View struct {
	Page     Page
	Rows     []Row
	LastName string
}

func BuildView(entries []Entry, page, size int, lastName string) View {
	p := Paginate(entries, page, size)
	rows := make([]Row, len(p.Items))
	for i, e := range p.Items {
		rows[i] = Row{Rank: p.Offset + i + 1, Entry: e, Highlighted: Highlighted(e, lastName)}
	}
	return View{Page: p, Rows: rows, LastName: lastName}
}
