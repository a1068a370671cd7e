package presenter

// Dispatcher runs functions on the coordinating context, one at a time and
// in submission order. Slots are only touched from inside dispatched
// functions.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a plain function to Dispatcher.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}
