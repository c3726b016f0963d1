/*
Package internal contains the sizing arithmetic of the flat tree layout.

It is an internal package s.t. the heuristics below can't leak into the publicly
visible API; trees only expose the resulting numbers.
see: https://dave.cheney.net/2019/10/06/use-internal-packages-to-reduce-your-public-api-surface
*/
package internal
