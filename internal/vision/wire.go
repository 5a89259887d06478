package vision

import "github.com/vietanh2810/fleet-inventory-api/internal/domain"

const (
	featureLabelDetection     = "LABEL_DETECTION"
	featureObjectLocalization = "OBJECT_LOCALIZATION"
	featureTextDetection      = "TEXT_DETECTION"
)

type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image    image     `json:"image"`
	Features []feature `json:"features"`
}

type image struct {
	Content string `json:"content"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type annotateResponse struct {
	Responses []imageResponse `json:"responses"`
}

type imageResponse struct {
	LabelAnnotations           []domain.Label           `json:"labelAnnotations"`
	LocalizedObjectAnnotations []domain.LocalizedObject `json:"localizedObjectAnnotations"`
	TextAnnotations            []textAnnotation         `json:"textAnnotations"`
	Error                      *status                  `json:"error"`
}

type textAnnotation struct {
	Locale      string `json:"locale"`
	Description string `json:"description"`
}

type status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
