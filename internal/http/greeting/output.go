package greeting

// GetOutput is the plain-text response for GET /.
type GetOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
