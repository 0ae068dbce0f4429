/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package collect

import (
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// FilterByPrefix selects the stacks whose name starts with targetPrefix,
// preserving relative order. An empty prefix matches every stack.
func FilterByPrefix(stacks []types.Stack, targetPrefix string) []types.Stack {
	var targets []types.Stack
	for _, stack := range stacks {
		if strings.HasPrefix(awssdk.ToString(stack.StackName), targetPrefix) {
			targets = append(targets, stack)
		}
	}
	return targets
}
