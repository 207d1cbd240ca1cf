// storecli es el cliente de terminal de la tienda: navega el catálogo,
// arma el carrito (anónimo o autenticado), inicia sesión y hace checkout
// contra un backend en ejecución. El estado de sesión y el carrito local se
// persisten en un archivo JSON (el equivalente a localStorage).
//
// Uso:
//
//	storecli products                  lista el catálogo
//	storecli search <texto>            busca en el catálogo
//	storecli add <productId> [cant]    agrega al carrito (local si es anónimo)
//	storecli cart                      muestra el carrito actual
//	storecli register <nombres> <correo> <contrasena>
//	storecli login <correo> <contrasena>
//	storecli logout
//	storecli checkout [metodoPago]     migra el carrito local si hace falta y compra
//	storecli orders                    órdenes del usuario
//	storecli questionnaire             envía un cuestionario de ejemplo
//	storecli flow                      muestra la decisión de la ruta raíz
//	storecli reset-gate                limpia las banderas de la compuerta
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/client"
	"github.com/ferdcas/tienda-romantica/internal/domain/entity"
	"github.com/ferdcas/tienda-romantica/pkg/config"
	"github.com/ferdcas/tienda-romantica/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("cargar configuración: %v", err)
	}
	zl := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"}).Zerolog()

	store := client.NewFileStorage(cfg.Store.StatePath, zl)
	api := client.NewAPI(cfg.Store.APIBaseURL, zl)
	session := client.NewSession(store, api, zl)
	localCart := client.NewLocalCart(store, zl)
	reconciler := client.NewReconciler(api, localCart, zl)
	gate := client.NewGate(store, api, session, zl)

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "products":
		list, err := api.GetProducts(ctx)
		exitOn(err)
		for _, p := range list {
			fmt.Printf("%s  %-30s  $%s  [%s]\n", p.ID, p.Nombre, p.Precio.StringFixed(0), p.Categoria)
		}

	case "search":
		need(args, 1, "search <texto>")
		list, err := api.SearchProducts(ctx, args[0])
		exitOn(err)
		for _, p := range list {
			fmt.Printf("%s  %-30s  $%s\n", p.ID, p.Nombre, p.Precio.StringFixed(0))
		}

	case "add":
		need(args, 1, "add <productId> [cantidad]")
		qty := 1
		if len(args) > 1 {
			qty, err = strconv.Atoi(args[1])
			if err != nil || qty < 1 {
				fatal("cantidad inválida: %s", args[1])
			}
		}
		product, err := api.GetProduct(ctx, args[0])
		exitOn(err)
		if session.Authenticated() {
			cart, err := api.AddToCart(ctx, dto.AddToCartRequest{
				UserID: session.UserID(), ProductID: product.ID, Quantity: qty,
			})
			exitOn(err)
			printCart(cart)
		} else {
			items, err := localCart.Add(*product, qty, entity.PagoBeso)
			exitOn(err)
			fmt.Printf("carrito local: %d línea(s), total $%s\n", len(items), localCart.Total().StringFixed(0))
		}

	case "cart":
		if session.Authenticated() {
			cart, err := api.GetCart(ctx, session.UserID())
			exitOn(err)
			printCart(cart)
		} else {
			items := localCart.Load()
			if len(items) == 0 {
				fmt.Println("carrito local vacío")
				return
			}
			for _, it := range items {
				nombre := it.ProductID
				if it.Product != nil {
					nombre = it.Product.Nombre
				}
				fmt.Printf("%dx %-30s  $%s\n", it.Quantity, nombre, it.TotalPrice.StringFixed(0))
			}
			fmt.Printf("total: $%s\n", localCart.Total().StringFixed(0))
		}

	case "register":
		need(args, 3, "register <nombres> <correo> <contrasena>")
		user, err := session.Register(ctx, dto.RegisterRequest{
			Nombres: args[0], Correo: args[1], Contrasena: args[2],
		})
		exitOn(err)
		fmt.Printf("registrado: %s (%s)\n", user.Nombres, user.ID)

	case "login":
		need(args, 2, "login <correo> <contrasena>")
		user, err := session.Login(ctx, args[0], args[1])
		exitOn(err)
		fmt.Printf("hola, %s\n", user.Nombres)

	case "logout":
		session.Logout()
		fmt.Println("sesión cerrada")

	case "checkout":
		if !session.Authenticated() {
			fatal("inicia sesión antes de comprar")
		}
		metodo := entity.PagoBeso
		if len(args) > 0 {
			metodo = args[0]
		}
		order, err := reconciler.Checkout(ctx, session.UserID(), metodo)
		exitOn(err)
		fmt.Printf("orden %s creada: total $%s, se paga con %s\n",
			order.ID, order.Total.StringFixed(0), order.MetodoPago)

	case "orders":
		if !session.Authenticated() {
			fatal("inicia sesión para ver tus órdenes")
		}
		list, err := api.MyOrders(ctx, session.UserID())
		exitOn(err)
		for _, o := range list {
			fmt.Printf("%s  %-12s  $%-10s  %s\n", o.ID, o.Estado, o.Total.StringFixed(0), o.CreatedAt.Format("2006-01-02"))
		}

	case "questionnaire":
		responses, _ := json.Marshal(map[string]string{
			"cancion_favorita": "nuestra canción",
			"comida_favorita":  "pasta",
			"plan_ideal":       "atardecer y película",
		})
		_, err := api.SubmitQuestionnaire(ctx, dto.SubmitQuestionnaireRequest{
			UserID:    session.UserID(),
			Responses: responses,
		})
		exitOn(err)
		count := gate.MarkQuestionnaireCompleted(ctx)
		fmt.Printf("cuestionario enviado; conteo actual: %d\n", count)

	case "flow":
		state := gate.Reconcile(ctx)
		result := client.Decide(client.FlowState{
			Path:               "/",
			Authenticated:      session.Authenticated(),
			FirstVisit:         state.FirstVisit,
			QuestionnaireCount: state.QuestionnaireCount,
		})
		fmt.Printf("decisión: %s\n", decisionName(result.Decision))
		if result.MarkVisited {
			gate.MarkVisited()
			fmt.Println("(visita marcada)")
		}

	case "reset-gate":
		gate.Reset()
		fmt.Println("compuerta reiniciada")

	default:
		usage()
		os.Exit(2)
	}
}

func printCart(cart *dto.CartResponse) {
	if cart == nil || len(cart.Items) == 0 {
		fmt.Println("carrito vacío")
		return
	}
	for _, it := range cart.Items {
		nombre := it.ProductID
		if it.Product != nil {
			nombre = it.Product.Nombre
		}
		fmt.Printf("%s  %dx %-30s  $%s\n", it.ID, it.Quantity, nombre, it.TotalPrice.StringFixed(0))
	}
	fmt.Printf("total: $%s\n", cart.Total.StringFixed(0))
}

func decisionName(d client.Decision) string {
	switch d {
	case client.DecideLoading:
		return "cargando"
	case client.DecideStore:
		return "tienda"
	case client.DecideAutoRegister:
		return "auto-registro"
	case client.DecideQuestionnaire:
		return "cuestionario"
	case client.DecideSyncing:
		return "sincronizando"
	default:
		return "passthrough"
	}
}

func need(args []string, n int, form string) {
	if len(args) < n {
		fatal("uso: storecli %s", form)
	}
}

func exitOn(err error) {
	if err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, `uso: storecli <comando>

  products | search | add | cart | register | login | logout
  checkout | orders | questionnaire | flow | reset-gate`)
}
