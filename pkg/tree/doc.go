// Package tree defines the category tree the configuration loader validates
// keywords against, and provides an XML-backed implementation.
//
// The XML format nests categories as elements. Elements carrying an id
// attribute are items; everything else is a category. The document root
// names the root category:
//
//	<all>
//	  <tools>
//	    <pickaxe>
//	      <woodenpickaxe id="270"/>
//	      <stonepickaxe id="274"/>
//	    </pickaxe>
//	  </tools>
//	  <blocks>
//	    <wood id="17" damage="0"/>
//	  </blocks>
//	</all>
//
// Keywords are element names and are matched case-insensitively.
package tree
