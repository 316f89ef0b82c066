package component

// Lives counts remaining attempts. Count has no lower bound.
type Lives struct {
	Count   int
	Initial int
}

var LivesComponent = NewComponent[Lives]()
