package domain

// SamplePosts returns the posts every new store starts with.
func SamplePosts() []Post {
	return []Post{
		{Title: "Pierwszy post", Author: "Marcel Kuczek", Content: "Kuczek pierwszy post"},
		{Title: "Drugi post", Author: "Jan Kowalski", Content: "Jan Kowalski pierwszy post."},
		{Title: "Czwarty post", Author: "Marcel Kuczek", Content: "Kolejny post Marcel Kuczek."},
	}
}
