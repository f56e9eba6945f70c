package core

import "io"

// Attachment is the wire metadata of a file attached to an assignment
// or a submission. The content itself lives behind a download endpoint.
type Attachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

// Upload is a file to be sent as part of a multipart form-data request.
type Upload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// File is an opaque binary response (CSV/XLSX/PDF exports, attachment
// downloads). The caller persists it as a side effect; it never goes
// through the JSON response parser.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
