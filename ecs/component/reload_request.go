package component

// ReloadRequest is a marker component used to signal the scene manager to
// rebuild the current scene. Systems may create a short-lived entity with
// this component to request a reload.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
