// SPDX-License-Identifier: MIT

// Package quad integrates a function of one variable over [a,b] with a
// composite Newton–Cotes rule and Runge's rule for error control.
//
// Rules over n equal subintervals, h = (b−a)/n:
//
//	rectangle_left   h·Σ f(a + i·h),        i = 0..n−1
//	rectangle_right  h·Σ f(a + (i+1)·h),    i = 0..n−1
//	rectangle_mid    h·Σ f(a + (i+½)·h),    i = 0..n−1
//	trapezoidal      h·(½(f(a)+f(b)) + Σ f(a + i·h)),  i = 1..n−1
//	simpson          h/3·(f(a) + f(b) + 4·Σ_odd + 2·Σ_even), n even
//
// Integrate starts at n = 4 and doubles n until
//
//	|I(n) − I(2n)| / (2^k − 1) < eps
//
// where k = 4 for Simpson and 2 otherwise, returning I(2n) and 2n. Running
// out of doublings (or subdivisions) yields ErrAccuracyNotReached together
// with the last estimate.
package quad
