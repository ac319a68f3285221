package api

type Post struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type PostProto struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ModifyPostProto carries the fields to change; empty fields are left as they are.
type ModifyPostProto struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}
