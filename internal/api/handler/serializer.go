package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/service"
)

// postJSON is the one post shape used everywhere: feeds, the detail view and
// the REST resource. The image reference surfaces uniformly (null when the
// post has none).
func postJSON(p *model.Post) gin.H {
	var group any
	if p.Group != nil {
		group = p.Group.Slug
	}
	var image any
	if p.Image != "" {
		image = "/media/" + p.Image
	}
	return gin.H{
		"id":      p.ID,
		"text":    p.Text,
		"author":  p.Author.Username,
		"image":   image,
		"created": p.CreatedAt.Format(time.RFC3339),
		"group":   group,
	}
}

func postListJSON(posts []*model.Post) []gin.H {
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, postJSON(p))
	}
	return out
}

func commentJSON(c *model.Comment) gin.H {
	return gin.H{
		"id":      c.ID,
		"text":    c.Text,
		"author":  c.Author.Username,
		"created": c.CreatedAt.Format(time.RFC3339),
	}
}

func feedJSON(f *service.Feed) gin.H {
	return gin.H{
		"page_obj": f.Page,
		"posts":    postListJSON(f.Posts),
	}
}

func groupJSON(g *model.Group) gin.H {
	return gin.H{
		"id":          g.ID,
		"title":       g.Title,
		"slug":        g.Slug,
		"description": g.Description,
	}
}
