package model

import "image"

// CropModel holds the last confirmed crop rectangle in image pixels.
// The zero value holds no rectangle and is ready to use.
type CropModel struct {
	rect  image.Rectangle
	moves int
}

// NewCropModel returns a pointer to a ready-to-use CropModel.
func NewCropModel() *CropModel { return &CropModel{} }

// SetRect stores r normalised. An empty rectangle clears the model.
func (m *CropModel) SetRect(r image.Rectangle) {
	if m == nil {
		return
	}
	r = r.Canon()
	if r.Empty() {
		m.rect = image.Rectangle{}
	} else {
		m.rect = r
	}
	m.moves++
}

// Rect returns the stored rectangle, empty when none is set.
func (m *CropModel) Rect() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.rect
}

// Has reports whether a non-empty rectangle is stored.
func (m *CropModel) Has() bool { return m != nil && !m.rect.Empty() }

// Moves counts SetRect calls since creation.
func (m *CropModel) Moves() int {
	if m == nil {
		return 0
	}
	return m.moves
}
