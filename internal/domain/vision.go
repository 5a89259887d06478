package domain

type Label struct {
	MID         string  `json:"mid,omitempty"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Topicality  float64 `json:"topicality,omitempty"`
}

type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BoundingPoly struct {
	NormalizedVertices []Vertex `json:"normalizedVertices,omitempty"`
}

// LocalizedObject is passed through to consumers; reconciliation ignores it.
type LocalizedObject struct {
	MID          string       `json:"mid,omitempty"`
	Name         string       `json:"name"`
	Score        float64      `json:"score"`
	BoundingPoly BoundingPoly `json:"boundingPoly"`
}

type VisionResult struct {
	Labels  []Label           `json:"labels"`
	Objects []LocalizedObject `json:"objects"`
	Text    string            `json:"text"`
}
