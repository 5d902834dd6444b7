package model

// Node is a single entry in the bookmark tree: either a *Folder or a *Link.
type Node interface {
	NodeID() string
	// DisplayName is the folder name or the link title.
	DisplayName() string
}

// Folder represents a container for links and other folders.
type Folder struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Children   NodeList `json:"children"`
	IsExpanded bool     `json:"isExpanded"`
}

// Link represents a saved URL.
type Link struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	FaviconPath string `json:"faviconPath"`
}

func (f *Folder) NodeID() string      { return f.ID }
func (f *Folder) DisplayName() string { return f.Name }

func (l *Link) NodeID() string      { return l.ID }
func (l *Link) DisplayName() string { return l.Title }

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Name     string
	Expanded bool
}

// NewFolder creates an empty Folder with a generated UUID.
func NewFolder(params NewFolderParams) *Folder {
	return &Folder{
		ID:         generateUUID(),
		Name:       params.Name,
		Children:   NodeList{},
		IsExpanded: params.Expanded,
	}
}

// NewLinkParams holds parameters for creating a new Link.
type NewLinkParams struct {
	Title string
	URL   string
}

// NewLink creates a Link with a generated UUID.
func NewLink(params NewLinkParams) *Link {
	return &Link{
		ID:    generateUUID(),
		Title: params.Title,
		URL:   params.URL,
	}
}

// NodeList is an ordered list of tree nodes. Order is display order.
type NodeList []Node

// FindByID finds a node anywhere in the list (depth-first), nil if not found.
func (l NodeList) FindByID(id string) Node {
	for _, n := range l {
		if n.NodeID() == id {
			return n
		}
		if f, ok := n.(*Folder); ok {
			if found := f.Children.FindByID(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// Contains reports whether id exists anywhere in the list.
func (l NodeList) Contains(id string) bool {
	return l.FindByID(id) != nil
}

// RemoveByID removes and returns the node with the given id, searching
// depth-first. Returns nil if not found.
func (l *NodeList) RemoveByID(id string) Node {
	for i, n := range *l {
		if n.NodeID() == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return n
		}
		if f, ok := n.(*Folder); ok {
			if removed := f.Children.RemoveByID(id); removed != nil {
				return removed
			}
		}
	}
	return nil
}

// InsertAt inserts node at the given index, clamping to the list bounds.
func (l *NodeList) InsertAt(node Node, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(*l) {
		index = len(*l)
	}
	*l = append(*l, nil)
	copy((*l)[index+1:], (*l)[index:])
	(*l)[index] = node
}

// Location describes where a node sits in a tree.
type Location struct {
	ParentID *string // nil = root list
	Index    int
}

// Locate finds the parent list position of a node, depth-first.
func (l NodeList) Locate(id string) (Location, bool) {
	return l.locate(id, nil)
}

func (l NodeList) locate(id string, parentID *string) (Location, bool) {
	for i, n := range l {
		if n.NodeID() == id {
			return Location{ParentID: parentID, Index: i}, true
		}
		if f, ok := n.(*Folder); ok {
			fid := f.ID
			if loc, ok := f.Children.locate(id, &fid); ok {
				return loc, true
			}
		}
	}
	return Location{}, false
}

// CountNodes returns the total number of nodes in the list, including
// nodes nested in folders.
func (l NodeList) CountNodes() int {
	count := 0
	for _, n := range l {
		count++
		if f, ok := n.(*Folder); ok {
			count += f.Children.CountNodes()
		}
	}
	return count
}

// Links returns pointers to every link in the list, depth-first.
func (l NodeList) Links() []*Link {
	var links []*Link
	for _, n := range l {
		switch v := n.(type) {
		case *Link:
			links = append(links, v)
		case *Folder:
			links = append(links, v.Children.Links()...)
		}
	}
	return links
}
