// file: internals/features/gallery/dto/gallery_dto.go
package dto

// GalleryRequest is the JSON/form body for creating an item from a hosted
// URL. The multipart upload alternative is handled by the controller before
// this shape is involved.
type GalleryRequest struct {
	ImageURL string `json:"imageUrl" form:"imageUrl"`
	Title    string `json:"title" form:"title"`
}
