package restrict_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/godatakit/godata/constraint"
	"github.com/godatakit/godata/restrict"
)

func TestRenderLeaf(t *testing.T) {
	g := goldie.New(t)

	r := restrict.NewText[book]("title", constraint.LikeSubstring("test_value"), true)
	g.Assert(t, "leaf", []byte(r.String()))
}

func TestRenderComposite(t *testing.T) {
	g := goldie.New(t)

	r := restrict.Any[book](
		restrict.All[book](
			restrict.NewBasic[book]("price", constraint.LessThan(50.0)),
			restrict.NewText[book]("title", constraint.LikeSubstring("Go"), true),
		),
		restrict.NewBasic[book]("year", constraint.Bounds(2000, 2010)).Negate(),
	).Negate()
	g.Assert(t, "composite", []byte(r.String()))
}
