package vdom

import "strings"

// MakeTagTest builds a membership predicate from a comma-joined vocabulary.
// The vocabulary is split once at build time; the returned predicate performs
// an exact set lookup, lower-casing the candidate when caseInsensitive is
// set. An empty vocabulary yields an always-false predicate.
func MakeTagTest(vocabulary string, caseInsensitive bool) func(string) bool {
	set := make(map[string]struct{})
	for _, token := range strings.Split(vocabulary, ",") {
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	if caseInsensitive {
		return func(tag string) bool {
			_, ok := set[strings.ToLower(tag)]
			return ok
		}
	}
	return func(tag string) bool {
		_, ok := set[tag]
		return ok
	}
}

// HTMLTags is the vocabulary of standard HTML element names.
const HTMLTags = "html,body,base,head,link,meta,style,title,address,article," +
	"aside,footer,header,hgroup,h1,h2,h3,h4,h5,h6,nav,section,div,dd,dl,dt," +
	"figcaption,figure,picture,hr,img,li,main,ol,p,pre,ul,a,b,abbr,bdi,bdo," +
	"br,cite,code,data,dfn,em,i,kbd,mark,q,rp,rt,ruby,s,samp,small,span," +
	"strong,sub,sup,time,u,var,wbr,area,audio,map,track,video,embed,object," +
	"param,source,canvas,script,noscript,del,ins,caption,col,colgroup,table," +
	"thead,tbody,td,th,tr,button,datalist,fieldset,form,input,label,legend," +
	"meter,optgroup,option,output,progress,select,textarea,details,dialog," +
	"menu,summary,template,blockquote,iframe,tfoot,slot"

// SVGTags is the vocabulary of SVG element names.
const SVGTags = "svg,animate,animateMotion,animateTransform,circle,clipPath," +
	"defs,desc,discard,ellipse,feBlend,feColorMatrix,feComponentTransfer," +
	"feComposite,feConvolveMatrix,feDiffuseLighting,feDisplacementMap," +
	"feDistantLight,feDropShadow,feFlood,feFuncA,feFuncB,feFuncG,feFuncR," +
	"feGaussianBlur,feImage,feMerge,feMergeNode,feMorphology,feOffset," +
	"fePointLight,feSpecularLighting,feSpotLight,feTile,feTurbulence,filter," +
	"foreignObject,g,image,line,linearGradient,marker,mask,metadata,mpath," +
	"path,pattern,polygon,polyline,radialGradient,rect,set,stop,switch," +
	"symbol,text,textPath,tspan,use,view"

// MathMLTags is the vocabulary of MathML element names.
const MathMLTags = "annotation,annotation-xml,maction,maligngroup,malignmark," +
	"math,menclose,merror,mfenced,mfrac,mglyph,mi,mlabeledtr,mlongdiv," +
	"mmultiscripts,mn,mo,mover,mpadded,mphantom,mprescripts,mroot,mrow,ms," +
	"mscarries,mscarry,msgroup,msline,mspace,msqrt,msrow,mstack,mstyle,msub," +
	"msubsup,msup,mtable,mtd,mtext,mtr,munder,munderover,none,semantics"

// Per-vocabulary classifiers. SVG tags are case-sensitive (foreignObject).
var (
	IsHTMLTag   = MakeTagTest(HTMLTags, true)
	IsSVGTag    = MakeTagTest(SVGTags, false)
	IsMathMLTag = MakeTagTest(MathMLTags, true)
)

// IsNativeTag reports whether tag is reserved by any of the three native
// vocabularies. User component names must not collide with these.
func IsNativeTag(tag string) bool {
	return IsHTMLTag(tag) || IsSVGTag(tag) || IsMathMLTag(tag)
}

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
