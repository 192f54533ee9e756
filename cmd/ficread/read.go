package main

// ReadCmd reads one chapter of a work given by URL.
type ReadCmd struct {
	URL     string
	Chapter int
}

// Run fetches the chapter and presents it.
func (c *ReadCmd) Run(deps *Dependencies) error {
	chapter, err := deps.Archive.Read(deps.Ctx, c.URL, c.Chapter)
	if err != nil {
		return err
	}
	return deps.Present(deps.Formatter.FormatChapter(chapter))
}
