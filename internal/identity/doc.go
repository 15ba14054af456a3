// Package identity collects commit identities from a repository and rewrites
// them across history.
//
// Collection runs either a structured go-git walk (HistoryCollector) or the
// git shortlog text contract (ShortlogCollector); FallbackCollector combines
// the two. ConfigReader lists configured user.name and user.email values, and
// HistoryRewriter applies an environment filter to every branch and tag via
// git filter-branch.
package identity
