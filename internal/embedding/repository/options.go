package repository

type GetOptions struct {
	Model    string
	TextHash string
}

type SaveOptions struct {
	Model    string
	TextHash string
	Vector   []float32
}
