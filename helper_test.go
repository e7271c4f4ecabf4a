package inventory

// USD is a helper for test to create dollars from const
func USD(v float64) Money { return M(v, "USD") }

// widget is the record used throughout the tests.
func widget() Record { return NewRecord("Widget", 10, 2.50, 5.00, "USD") }
