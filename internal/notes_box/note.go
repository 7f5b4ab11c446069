package notes_box

type Note struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
