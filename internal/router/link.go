package router

// Link is a navigation target rendered by the view layer. Activating a
// link never reloads anything; it just calls Navigate on the router.
type Link struct {
	To    string
	Label string
}

// IsActive reports whether the link's target is the current location.
// The comparison is exact-path only: a link to "/fitness" is not active
// at "/fitness/treinos". Callers needing "any descendant active" must
// check their children's links themselves, the way expandable nav
// sections do.
func (l Link) IsActive(loc Location) bool {
	return loc.Path == l.To
}

// Follow navigates the router to the link's target.
func (l Link) Follow(r *Router) {
	r.Navigate(l.To)
}
