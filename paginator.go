package ficread

// PagerStatus is the state of a Paginator.
type PagerStatus int

// Paginator states.
const (
	Viewing PagerStatus = iota
	Ended
	Quit
)

// PageView is one chunk of lines emitted by a Paginator.
// Start and End are the 1-based inclusive line range; a view with no lines
// has Start greater than End.
type PageView struct {
	Lines []string
	Start int
	End   int
	Total int
}

// Paginator walks a block of lines one page at a time.
//
// Offset is the index of the first line not yet shown. Advance shows the
// next page and moves Offset to its end; once the last line is shown the
// paginator is Ended. Back shows the page before the one last shown.
type Paginator struct {
	lines    []string
	pageSize int
	offset   int
	start    int
	status   PagerStatus
}

// NewPaginator returns a paginator over lines in state Viewing(0).
// Page sizes below 1 are treated as 1.
func NewPaginator(lines []string, pageSize int) *Paginator {
	return &Paginator{
		lines:    lines,
		pageSize: max(pageSize, 1),
	}
}

// Offset returns the index of the first line not yet shown.
func (p *Paginator) Offset() int { return p.offset }

// PageSize returns the number of lines per page.
func (p *Paginator) PageSize() int { return p.pageSize }

// Total returns the number of lines.
func (p *Paginator) Total() int { return len(p.lines) }

// Status returns the current state.
func (p *Paginator) Status() PagerStatus { return p.status }

// Advance emits the page at the current offset. Emitting the page that
// contains the last line moves the paginator to Ended. Advancing an Ended
// or Quit paginator emits nothing.
func (p *Paginator) Advance() PageView {
	if p.status != Viewing {
		return p.view(p.offset, p.offset)
	}
	total := len(p.lines)
	end := p.offset + p.pageSize
	if end >= total {
		end = total
		p.status = Ended
	}
	return p.show(p.offset, end)
}

// Back emits the page before the one last shown, or the first page again
// when already at the start. Back re-enters Viewing from Ended unless the
// emitted page still holds the last line; it emits nothing after Quit.
func (p *Paginator) Back() PageView {
	if p.status == Quit {
		return p.view(p.offset, p.offset)
	}
	start := max(p.start-p.pageSize, 0)
	end := min(start+p.pageSize, len(p.lines))
	p.status = Viewing
	if end >= len(p.lines) {
		p.status = Ended
	}
	return p.show(start, end)
}

// Quit terminates the paginator. Further calls emit nothing.
func (p *Paginator) Quit() {
	p.status = Quit
}

func (p *Paginator) show(start, end int) PageView {
	p.start = start
	p.offset = end
	return p.view(start, end)
}

func (p *Paginator) view(start, end int) PageView {
	return PageView{
		Lines: p.lines[start:end],
		Start: start + 1,
		End:   end,
		Total: len(p.lines),
	}
}
