package page_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/godatakit/godata/page"
)

type PageTestSuite struct {
	suite.Suite
}

func (s *PageTestSuite) TestModeString() {
	s.Equal("OFFSET", page.ModeOffset.String())
	s.Equal("CURSOR_NEXT", page.ModeCursorNext.String())
	s.Equal("CURSOR_PREVIOUS", page.ModeCursorPrevious.String())
}

func (s *PageTestSuite) TestCursor() {
	id := uuid.New()
	c := page.NewCursor(45000.0, "Nagy", id)
	s.Equal(3, c.Size())
	s.Equal([]any{45000.0, "Nagy", id}, c.Elements())
	s.Equal("Nagy", c.Get(1))
}

func (s *PageTestSuite) TestCursorCopiesItsValues() {
	vals := []any{1, 2}
	c := page.NewCursor(vals...)
	vals[0] = 99
	s.Equal([]any{1, 2}, c.Elements())

	got := c.Elements()
	got[1] = 99
	s.Equal([]any{1, 2}, c.Elements())
}

func (s *PageTestSuite) TestCursorRequiresValues() {
	s.PanicsWithValue("page: cursor key values are required", func() {
		page.NewCursor()
	})
}

func (s *PageTestSuite) TestOfPage() {
	p := page.OfPage(3)
	s.Equal(int64(3), p.Page())
	s.Equal(10, p.Size())
	s.True(p.RequestsTotal())
	s.Equal(page.ModeOffset, p.Mode())
	_, ok := p.Cursor()
	s.False(ok)

	s.PanicsWithValue("page: page number must be at least 1, got 0", func() {
		page.OfPage(0)
	})
}

func (s *PageTestSuite) TestOfSize() {
	p := page.OfSize(25)
	s.Equal(int64(1), p.Page())
	s.Equal(25, p.Size())

	s.PanicsWithValue("page: page size must be at least 1, got 0", func() {
		page.OfSize(0)
	})
}

func (s *PageTestSuite) TestWithers() {
	p := page.OfPage(2)

	s.Equal(40, p.WithSize(40).Size())
	s.False(p.WithoutTotal().RequestsTotal())
	s.True(p.WithoutTotal().WithTotal().RequestsTotal())
	s.True(p.RequestsTotal(), "withers must not mutate the receiver")
}

func (s *PageTestSuite) TestCursorRequests() {
	c := page.NewCursor("Nagy")

	after := page.OfSize(20).AfterCursor(c)
	s.Equal(page.ModeCursorNext, after.Mode())
	got, ok := after.Cursor()
	s.Require().True(ok)
	s.Equal(c, got)

	before := page.OfSize(20).BeforeCursor(c)
	s.Equal(page.ModeCursorPrevious, before.Mode())
}

func (s *PageTestSuite) TestNext() {
	p := page.OfPage(2).AfterCursor(page.NewCursor("Nagy"))
	n := p.Next()
	s.Equal(int64(3), n.Page())
	s.Equal(page.ModeOffset, n.Mode(), "Next drops the cursor")
	_, ok := n.Cursor()
	s.False(ok)
}

func (s *PageTestSuite) TestPrevious() {
	p := page.OfPage(2)
	prev, ok := p.Previous()
	s.True(ok)
	s.Equal(int64(1), prev.Page())

	same, ok := prev.Previous()
	s.False(ok)
	s.Equal(int64(1), same.Page())
}

func (s *PageTestSuite) TestString() {
	s.Equal("page 2, size 10, mode OFFSET", page.OfPage(2).String())
}

func TestPageTestSuite(t *testing.T) {
	suite.Run(t, new(PageTestSuite))
}
