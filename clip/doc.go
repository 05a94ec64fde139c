// SPDX-License-Identifier: EPL-2.0

// Package clip provides the immutable mono PCM value the composition
// layer is built on, plus the pure transforms applied to it: channel
// downmixing, cubic resampling, sample-wise summing, concatenation and
// edge silence trimming.
//
// All transforms return new clips. A Clip that has been handed out is
// never modified, which is what makes the recomposition cascade in the
// session package safe to rerun at any time.
package clip
