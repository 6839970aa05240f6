package peplerrors

// local interface to be used with errors.Unwrap().
// errors package does not define a separate interface, relies on reflection instead.
type unwrapInterface interface {
	Unwrap() error
}
