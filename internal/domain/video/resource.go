package video

// Resource is an uploaded file waiting to be turned into a media slot. It is
// never persisted as is.
type Resource struct {
	Content     []byte
	ContentType string
	Name        string
	Type        MediaType
}

// NewResource creates a Resource for the given slot.
func NewResource(content []byte, contentType, name string, mediaType MediaType) *Resource {
	return &Resource{
		Content:     content,
		ContentType: contentType,
		Name:        name,
		Type:        mediaType,
	}
}
