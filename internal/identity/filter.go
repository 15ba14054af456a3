package identity

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
)

const environmentFilterTemplateConstant = `WRONG_EMAIL=%s
NEW_NAME=%s
NEW_EMAIL=%s

if [ "$GIT_COMMITTER_EMAIL" = "$WRONG_EMAIL" ]
then
    export GIT_COMMITTER_NAME="$NEW_NAME"
    export GIT_COMMITTER_EMAIL="$NEW_EMAIL"
fi
if [ "$GIT_AUTHOR_EMAIL" = "$WRONG_EMAIL" ]
then
    export GIT_AUTHOR_NAME="$NEW_NAME"
    export GIT_AUTHOR_EMAIL="$NEW_EMAIL"
fi`

// BuildEnvironmentFilter renders the filter-branch env filter for the directive.
// Committer and author are matched and rewritten independently; values are shell-quoted.
func BuildEnvironmentFilter(directive RewriteDirective) string {
	return fmt.Sprintf(
		environmentFilterTemplateConstant,
		shellquote.Join(directive.WrongEmail),
		shellquote.Join(directive.NewName),
		shellquote.Join(directive.NewEmail),
	)
}
