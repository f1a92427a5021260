package reader

import (
	"fmt"
	"io"
	"os"
)

// ReadInput - возвращает весь вход одной строкой; нарезку на строки делает поисковый движок,
// чтобы завершающий '\n' и '\r' не терялись по дороге
func ReadInput(stdin io.Reader, fileName string) (string, error) {
	switch fileName {
	case "":
		return readStdIn(stdin)
	default:
		return readFile(fileName)
	}
}

func readStdIn(stdin io.Reader) (string, error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %q", err)
	}
	return string(raw), nil
}

func readFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %q", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	// открываем файл для чтения
	file, err := os.Open(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't open file %q: %q", fileName, err)
	}
	defer file.Close()

	// читаем и возвращаем результат целиком
	raw, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %q", fileName, err)
	}
	return string(raw), nil
}
