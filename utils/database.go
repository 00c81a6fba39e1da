// utils/database.go
package utils

// ExecuteDedupOperation 执行带去重检查的操作：
// 先检查目标是否已存在，已存在则跳过，否则执行创建操作。
// 返回值表示本次是否真正执行了创建。
func ExecuteDedupOperation(checkExists func() (bool, error), operation func() error) (bool, error) {
	exists, err := checkExists()
	if err != nil {
		return false, err
	}

	if exists {
		return false, nil
	}

	if err := operation(); err != nil {
		return false, err
	}

	return true, nil
}
