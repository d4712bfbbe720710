// Package builder computes multi-scale cost and nutrition models from a
// loaded site. It resolves the recipe graph, validates every declared
// scale, walks recipes leaves-first so child base profiles are always
// cached before their parents need them, and aggregates per-ingredient
// rows into per-scale profiles. Batch reconciliation between a parent's
// stated quantity and a child recipe's yields is delegated to a
// BatchPolicy so alternative interpretations can be swapped in.
package builder
