// file: internals/features/gallery/model/gallery_model.go
package model

// GalleryItemModel is one stored gallery entry. ImageURL is either a path
// under /uploads/ or an externally hosted URL.
type GalleryItemModel struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}
