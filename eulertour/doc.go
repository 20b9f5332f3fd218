// Package eulertour implements an Euler-Tour Tree: every component of
// the forest is one circular Euler tour, stored as a position-ordered
// splay sequence.
//
// Overview:
//
//   - The tour of a component visits every tree edge exactly twice,
//     once per direction. The sequence holds one "vertex" token per
//     vertex plus, per live edge, two "arc" tokens marking where the
//     tour crosses that edge. Arc tokens carry the unit key, so they
//     vanish from folds.
//   - Link rotates both tours so their endpoints come first, then
//     splices tour(u) + arc(u→v) + tour(v) + arc(v→u) into one
//     sequence. Cut excises the sub-range between the edge's two arcs
//     and returns both arc nodes to a free-list; arcs are the only
//     nodes ever allocated or freed.
//   - Because a whole component already is one splay tree, component
//     queries read the tree root directly — no access step at all.
//
// What this backend can and cannot answer:
//
//   - It implements forest.Forest, forest.VertexOps, forest.ComponentOps
//     and forest.SubtreeOps. It does not implement forest.PathOps: a
//     tour linearizes the tree, not the u→v path, so path queries are
//     the province of the linkcut and toptree backends.
//   - A component fold is the policy fold over the tour in tour order,
//     and re-rooting rotates that order. Use policies whose Merge is
//     commutative for fold operations; all stock int64 policies are.
//
// Complexity: Link, Cut, Connected and the vertex operations are
// amortized O(log n); ComponentFold and ComponentSize are amortized
// O(log n) (one splay); the subtree operations cost one Cut plus one
// Link.
//
// Error handling matches the forest contract: Link and Cut report
// false for rejected operations without panicking; out-of-range ids
// and subtree operations on non-edges are programmer errors and panic.
package eulertour
