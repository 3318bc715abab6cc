// internal/pkg/enrich/enrich.go
package enrich

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// 读路径的两种远程补全策略。
// List：逐条补全，失败的条目直接从结果集剔除，调用方永远看不到部分错误。
// One：严格补全，任何失败原样上抛——没有关联数据的单实体不算"找到"。
// 两种策略写成显式函数而不是散落的 try/catch，保证可独立审计、独立测试。

const defaultLimit = 8

// List 以有界并发对每个元素执行 fn，返回补全成功的元素，保持原有顺序。
func List[T any](ctx context.Context, items []T, limit int, fn func(context.Context, *T) error) []T {
	if limit <= 0 {
		limit = defaultLimit
	}

	keep := make([]bool, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range items {
		i := i
		g.Go(func() error {
			// 单条失败只影响该条目，不取消整组
			if err := fn(gctx, &items[i]); err == nil {
				keep[i] = true
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]T, 0, len(items))
	for i := range items {
		if keep[i] {
			out = append(out, items[i])
		}
	}
	return out
}

// One 对单个元素执行 fn，失败即失败。
func One[T any](ctx context.Context, item *T, fn func(context.Context, *T) error) error {
	return fn(ctx, item)
}
