package transfer

type PlatformAnalytics struct {
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	Followers      int       `json:"followers"`
	Views7d        int       `json:"views_7d"`
	PostsScheduled int       `json:"posts_scheduled"`
	TopPosts       []TopPost `json:"top_posts"`
}

type TopPost struct {
	Title      string `json:"title"`
	Engagement int    `json:"engagement"`
	Date       string `json:"date"`
}
