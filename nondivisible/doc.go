// Package nondivisible sizes the largest subset of integers in which no two
// elements sum to a multiple of k.
//
// Elements are grouped into remainder classes modulo k. Two classes i and
// k-i conflict, so only the larger one is taken whole. The classes 0 and,
// for even k, k/2 are self-complementary: at most one element of each fits.
//
// Preconditions: k >= 1. Memory is O(k), so k is expected to be small
// (HackerRank bounds it by 100). Elements may be negative; they are placed in the
// class x mod k folded into 0..k-1.
//
// A set with fewer than two elements, or k == 1, yields 1.
package nondivisible
