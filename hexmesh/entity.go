package hexmesh

// EntityKind identifies the four kinds of mesh entities. All dispatch on
// entity type goes through this closed enumeration.
type EntityKind int

const (
	Node EntityKind = iota
	Edge
	Face
	Cell
)

func (k EntityKind) String() string {
	return [...]string{"Node", "Edge", "Face", "Cell"}[k]
}

// Dim returns the reference dimension of the entity kind.
func (k EntityKind) Dim() int { return int(k) }

// Reference hexahedron vertex numbering:
//
//	    7-------6
//	   /|      /|
//	  4-------5 |        w v
//	  | |     | |        |/
//	  | 3-----|-2        +--u
//	  |/      |/
//	  0-------1
//
// Vertices 0-1-2-3 form the bottom quad (counter-clockwise seen from
// below), 4-5-6-7 the top quad stacked above it. In reference coordinates
// (u,v,w) on [0,1]^3, u runs 0->1, v runs 0->3 and w runs 0->4.
const (
	NumVertsPerCell = 8
	NumEdgesPerCell = 12
	NumFacesPerCell = 6
	NumVertsPerFace = 4
	NumEdgesPerFace = 4
)

// localEdge lists the 12 edges of the reference hexahedron as pairs of
// local vertices: bottom ring, vertical pillars, top ring.
var localEdge = [NumEdgesPerCell][2]int{
	{0, 1}, {1, 2}, {2, 3}, {0, 3},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{4, 5}, {5, 6}, {6, 7}, {4, 7},
}

// localFace lists the 6 faces as quads of local vertices. The stored order
// is the canonical orientation a face receives when this cell registers it
// first.
var localFace = [NumFacesPerCell][4]int{
	{0, 3, 2, 1}, {4, 5, 6, 7}, // bottom, top
	{0, 4, 7, 3}, {1, 2, 6, 5}, // left, right
	{0, 1, 5, 4}, {2, 3, 7, 6}, // front, back
}

// localFaceEdge lists, for each local face, the cell-local edge index of
// its i-th face-local edge. Face-local edge i joins face vertices
// faceEdge[i][0] and faceEdge[i][1] of the quad stored in localFace.
var localFaceEdge = [NumFacesPerCell][4]int{
	{3, 2, 1, 0}, {8, 9, 10, 11},
	{4, 11, 7, 3}, {1, 6, 9, 5},
	{0, 5, 8, 4}, {2, 7, 10, 6},
}

// faceEdge is the face-local edge pattern of a quad with vertices
// numbered 0-1-2-3: edge i runs from faceEdge[i][0] to faceEdge[i][1].
// The asymmetric {3,2} keeps opposite edges traversed in the same grid
// direction, which the interpolation point tables rely on.
var faceEdge = [NumEdgesPerFace][2]int{
	{0, 1}, {1, 2}, {3, 2}, {0, 3},
}

// trilinearVert maps the lexicographic tensor index (i*4 + j*2 + k) of the
// corner (i,j,k) in {0,1}^3 to the hexahedron local vertex number, so that
// the trilinear shape functions line up with the (u,v,w) axes above.
var trilinearVert = [NumVertsPerCell]int{0, 4, 3, 7, 1, 5, 2, 6}

// bilinearVert does the same for a quad face: tensor index (i*2 + j) of
// corner (i,j) in {0,1}^2 to face-local vertex number.
var bilinearVert = [NumVertsPerFace]int{0, 3, 1, 2}

// gridFaceCorner gives, for each cell local face slot, the cell-local
// vertices sitting at the four corners (0,0), (p,0), (p,p), (0,p) of that
// face's restriction of the (p+1)^3 cell grid. Slots are ordered like
// localFace: w=0, w=p, u=0, u=p, v=0, v=p.
var gridFaceCorner = [NumFacesPerCell][4]int{
	{0, 1, 2, 3}, {4, 5, 6, 7},
	{0, 3, 7, 4}, {1, 2, 6, 5},
	{0, 1, 5, 4}, {3, 2, 6, 7},
}
