package admin

import (
	"slices"

	"github.com/alexanderramin/campusadmin/internal/domain"
)

// Selector holds the catalog and the operator's (college, program) choice.
type Selector struct {
	catalog []domain.CollegeProgram
	loaded  bool
	college string
	program string
}

// SetCatalog replaces the catalog with a freshly fetched one.
func (s *Selector) SetCatalog(c []domain.CollegeProgram) {
	s.catalog = slices.Clone(c)
	s.loaded = true
}

// AddEntry patches the catalog with an entry created by the operator.
func (s *Selector) AddEntry(e domain.CollegeProgram) {
	s.catalog = append(slices.Clone(s.catalog), e)
}

func (s *Selector) Catalog() []domain.CollegeProgram { return slices.Clone(s.catalog) }
func (s *Selector) Loaded() bool                     { return s.loaded }

// SelectCollege sets the college and always clears the program, even when
// the college did not change.
func (s *Selector) SelectCollege(college string) {
	s.college = college
	s.program = ""
}

func (s *Selector) SelectProgram(program string) {
	s.program = program
}

func (s *Selector) Pair() domain.Pair {
	return domain.Pair{College: s.college, Program: s.program}
}

// CollegeOptions lists every catalog college in catalog order. Duplicates
// are kept; the catalog is not deduplicated.
func (s *Selector) CollegeOptions() []string {
	out := make([]string, 0, len(s.catalog))
	for _, e := range s.catalog {
		out = append(out, e.College)
	}
	return out
}

func (s *Selector) ProgramOptions() []string {
	return ProgramOptions(s.catalog, s.college)
}

// ProgramOptions returns the program list of the first catalog entry for
// college, or an empty list when there is none.
func ProgramOptions(catalog []domain.CollegeProgram, college string) []string {
	for _, e := range catalog {
		if e.College == college {
			if programs := e.Programs(); programs != nil {
				return slices.Clone(programs)
			}
			return []string{}
		}
	}
	return []string{}
}
