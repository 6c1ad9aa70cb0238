// Package main provides the CLI entry point for salesbook.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mzaytsev/salesbook/pkg/salesbook"
	"github.com/mzaytsev/salesbook/pkg/salesbook/store"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "salesbook [файл.xlsx]",
		Short: "Queries over a sales workbook (products, clients, orders)",
		Long: `salesbook loads the "Товары", "Клиенты" and "Заявки" sheets of a
workbook and answers ad-hoc queries: clients by product, contact person
update, golden client of a month.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log load diagnostics to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Произошла ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer l.Sync()
		logger = l
	}

	in := bufio.NewReader(cmd.InOrStdin())

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		path = prompt(in, "Введите путь до файла с данными:")
	}

	sess, err := salesbook.Open(path, salesbook.Options{Logger: logger})
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			fmt.Println("Файл не существует по указанному пути.")
			return nil
		}
		return err
	}
	defer sess.Close()

	fmt.Println("Выберите команду:")
	fmt.Println("1 - По наименованию товара вывести информацию о клиентах")
	fmt.Println("2 - Изменить контактное лицо клиента")
	fmt.Println("3 - Определить золотого клиента за указанный год и месяц")

	switch prompt(in, "") {
	case "1":
		return runOrdersByProduct(in, sess)
	case "2":
		return runUpdateContact(in, sess)
	case "3":
		return runGoldenClient(in, sess)
	default:
		fmt.Println("Неизвестная команда")
		return nil
	}
}

func runOrdersByProduct(in *bufio.Reader, sess *salesbook.Session) error {
	name := prompt(in, "Введите наименование товара:")

	_, lines, err := sess.OrdersByProduct(name)
	if errors.Is(err, salesbook.ErrProductNotFound) {
		fmt.Println("Товар не найден.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Информация о клиентах, заказавших товар %s:\n", name)
	for _, l := range lines {
		fmt.Printf("Клиент: %s, Количество: %d, Цена: %s ₽, Дата: %s\n",
			l.Organization, l.Quantity, formatPrice(l.Price), l.Date.Format("02.01.2006"))
	}
	return nil
}

func runUpdateContact(in *bufio.Reader, sess *salesbook.Session) error {
	org := prompt(in, "Введите название организации:")
	contact := prompt(in, "Введите ФИО нового контактного лица:")

	err := sess.UpdateContactPerson(org, contact)
	if errors.Is(err, salesbook.ErrOrganizationNotFound) {
		fmt.Println("Организация не найдена.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("Контактное лицо успешно обновлено.")
	return nil
}

func runGoldenClient(in *bufio.Reader, sess *salesbook.Session) error {
	year, err := strconv.Atoi(prompt(in, "Введите год (целиком):"))
	if err != nil {
		return fmt.Errorf("некорректный год: %w", err)
	}
	month, err := strconv.Atoi(prompt(in, "Введите месяц (числом):"))
	if err != nil {
		return fmt.Errorf("некорректный месяц: %w", err)
	}

	g, err := sess.GoldenClient(year, month)
	if errors.Is(err, salesbook.ErrNoOrders) {
		fmt.Println("Нет данных для указанного периода.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Золотой клиент: Код клиента %s, Количество заказов: %d\n", g.ClientCode, g.Orders)
	return nil
}

// prompt prints an optional prompt line and reads one trimmed input line.
func prompt(in *bufio.Reader, label string) string {
	if label != "" {
		fmt.Println(label)
	}
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// formatPrice renders a price without trailing zeros, e.g. 1234.5.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
