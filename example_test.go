package godata_test

import (
	"fmt"

	"github.com/godatakit/godata"
	"github.com/godatakit/godata/metamodel"
	"github.com/godatakit/godata/methodname"
	"github.com/godatakit/godata/restrict"
)

func Example() {
	type Employee struct {
		Name      string
		Salary    float64
		YearHired int
	}

	name := metamodel.NewText[Employee]("name")
	yearHired := metamodel.NewComparable[Employee, int]("yearHired")

	r := restrict.All(
		name.StartsWith("Duke"),
		yearHired.GreaterThan(2010),
	)
	fmt.Println(r)
	fmt.Println(r.Negate())
	// Output:
	// (name LIKE 'Duke%' AND yearHired > 2010)
	// NOT (name LIKE 'Duke%' AND yearHired > 2010)
}

func ExampleOrderBy() {
	type Employee struct {
		LastName string
		Salary   float64
	}

	o := godata.OrderBy(godata.Desc[Employee]("salary")).ThenAsc("lastName")
	fmt.Println(o)
	// Output:
	// salary DESC, lastName ASC
}

func ExampleLimitRange() {
	l := godata.LimitRange(41, 60)
	fmt.Println(l.StartAt(), l.MaxResults())
	// Output:
	// 41 20
}

func Example_queryByMethodName() {
	type Employee struct {
		LastName  string
		Salary    float64
		YearHired int
	}

	q, err := methodname.Parse(
		metamodel.Of[Employee](),
		"findFirst25ByYearHiredOrderBySalaryDescLastNameAsc",
		2020,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q.Subject, q.First)
	fmt.Println(q.Restriction)
	fmt.Println(q.Order)
	// Output:
	// find 25
	// yearHired = 2020
	// [salary DESC lastName ASC]
}
