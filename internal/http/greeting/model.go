package greeting

// Message is the body returned by GET /.
const Message = "Hello from MediaClay API!"

// ContentType is the media type of the greeting body.
const ContentType = "text/plain; charset=utf-8"

var body = []byte(Message)
