package domain

import "github.com/alimikegami/velvet-storefront/pkg/errs"

type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Date    string `json:"date"`
	Author  string `json:"author"`
}

func (p BlogPost) Validate() error {
	var c fieldChecker
	c.required("title", p.Title)
	c.required("content", p.Content)

	return c.result(errs.ErrClient)
}
