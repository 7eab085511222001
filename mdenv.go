// Package mdenv 判断 Markdown 文本中光标所处的词法环境
//
// 文本可以混合行内/多行代码和行内/多行公式。给定缓冲区和光标位置，
// 本包返回光标处的环境：Markdown、行内代码、多行代码（含围栏级别）、
// 行内公式或多行公式。编辑器据此决定自动配对等行为。
//
// 核心功能：
//   - 单行扫描：按优先级识别 ```、`、$$、$ 标记
//   - 行缓存：未变化的行不重复扫描，任意一行变化后向后重新计算
//   - 多文档：Session 为每个文档维护独立的缓存
//
// 主要 API：
//   - Resolve(): 使用临时缓存计算光标处的环境
//   - Resolver.Resolve(): 复用缓存，适合每次按键调用
//   - Session.Resolve(): 按文档 ID 管理缓存
//
// 示例：
//
//	r := mdenv.NewResolver()
//	src := mdenv.Lines{"```python", "def f():"}
//	env, err := r.Resolve(src, 1, 4)
//	if err != nil {
//	    return err
//	}
//	if env.IsCode() {
//	    // 代码中不自动配对 $
//	}
package mdenv
