package request

// Vote is +1 or -1
type Vote struct {
	Value int8 `json:"value" binding:"required,oneof=1 -1"`
}
