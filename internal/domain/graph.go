package domain

import "sort"

// Edge is one commenter-to-poster interaction, directed from the comment
// author to the author of the post they replied to.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	PostID string `json:"post_id"`
}

// InteractionGraph reshapes collected posts into node and edge lists for
// social-network analysis. Nodes are the unique authors seen anywhere in the
// data, sorted for stable output; edges run commenter -> post author, one per
// comment.
func InteractionGraph(posts []Post) ([]string, []Edge) {
	seen := make(map[string]struct{})
	var edges []Edge

	for _, p := range posts {
		seen[p.Author] = struct{}{}
		for _, c := range p.Comments {
			seen[c.Author] = struct{}{}
			edges = append(edges, Edge{From: c.Author, To: p.Author, PostID: p.ID})
		}
	}

	nodes := make([]string, 0, len(seen))
	for a := range seen {
		nodes = append(nodes, a)
	}
	sort.Strings(nodes)

	return nodes, edges
}
